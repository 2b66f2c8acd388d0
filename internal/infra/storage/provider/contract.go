package provider

import "github.com/medpoint/MP-SchedulingService/pkg/txmanager"

// DBExecutor общий интерфейс для работы с БД (*sql.DB или транзакция)
type DBExecutor = txmanager.Executor

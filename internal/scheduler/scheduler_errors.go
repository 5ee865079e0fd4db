package scheduler

import "errors"

// ErrSyncAlreadyRunning indica que já existe uma execução do job em andamento
var ErrSyncAlreadyRunning = errors.New("sincronização já em andamento")

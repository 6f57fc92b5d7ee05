package api

import "time"

// Row представляет одну строку удалённой таблицы для обмена
type Row struct {
	UpdatedAt time.Time         `json:"updated_at"`          // время последнего изменения строки
	Fields    map[string]string `json:"fields"`              // значения колонок (имя колонки -> значение)
	ID        string            `json:"id"`                  // уникальный идентификатор записи (UUID)
	RangeRef  string            `json:"range_ref,omitempty"` // ссылка на диапазон (заполняется сервером)
	RowIndex  int               `json:"row_index"`           // позиция строки на листе, 0 = не назначена
}

// ChangeIndicator is a cheap staleness probe for one sheet: the gateway
// exposes only the latest modification time and the row count, so the
// client can decide whether a full download is needed without reading data.
type ChangeIndicator struct {
	UpdatedAt time.Time `json:"updated_at"` // время последнего изменения листа
	RowCount  int       `json:"row_count"`  // текущее количество строк
}

// AppendRequest представляет запрос на добавление строк в конец листа
type AppendRequest struct {
	Rows []Row `json:"rows"`
}

// AppendResponse подтверждает добавление и возвращает назначенные индексы строк
type AppendResponse struct {
	Rows []Row `json:"rows"` // те же строки с заполненными RowIndex
}

// WriteRangeRequest представляет запрос на перезапись непрерывного диапазона строк
type WriteRangeRequest struct {
	RangeRef string `json:"range_ref"` // например "A12:F14"
	Rows     []Row  `json:"rows"`
}

// DeleteRowsRequest представляет запрос на удаление строк по идентификаторам записей
type DeleteRowsRequest struct {
	IDs []string `json:"ids"`
}

// DeleteRowsResponse возвращает количество фактически удалённых строк
type DeleteRowsResponse struct {
	Deleted int `json:"deleted"`
}

// ReadAllResponse возвращает все строки листа
type ReadAllResponse struct {
	Rows []Row `json:"rows"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // машинный код ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

package dto

// CurrencyURI binds the :id path segment.
type CurrencyURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// CurrencyQuotationURI binds the :id and :qid path segments.
type CurrencyQuotationURI struct {
	ID  int64 `uri:"id" binding:"required,min=1"`
	QID int64 `uri:"qid" binding:"required,min=1"`
}

// ConverterQuery binds the converter query string.
type ConverterQuery struct {
	Consistent bool `form:"consistent"`
}

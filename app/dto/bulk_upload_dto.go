package dto

// BulkUploadRowError describes one rejected spreadsheet row
type BulkUploadRowError struct {
	Row    int    `json:"row" example:"17"`
	Reason string `json:"reason" example:"missing company name"`
}

// BulkUploadResponse summarizes a spreadsheet import. Imports are
// row by row: valid rows land even when later rows fail.
type BulkUploadResponse struct {
	TotalRows   int                  `json:"total_rows" example:"250"`
	Inserted    int                  `json:"inserted" example:"230"`
	Updated     int                  `json:"updated" example:"12"`
	Failed      int                  `json:"failed" example:"8"`
	Errors      []BulkUploadRowError `json:"errors,omitempty"`
	ErrorsTrunc bool                 `json:"errors_truncated,omitempty" example:"true"`
}

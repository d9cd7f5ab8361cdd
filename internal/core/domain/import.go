package domain

// ImportResult reports the outcome of one statement import.
type ImportResult struct {
	BatchID   string `json:"batchID"`
	FileName  string `json:"fileName"`
	Encoding  string `json:"encoding"`
	Imported  int    `json:"imported"`
	Skipped   int    `json:"skipped"`   // duplicates of stored rows or of earlier rows in the same file
	Discarded int    `json:"discarded"` // rows with an unparseable accounting date or amount
}

// Package ingest turns raw bank statement exports into transaction drafts.
//
// Statements are semicolon separated and follow the European conventions used by the
// bank: DD/MM/YYYY dates and amounts such as "-1.234,56". The text encoding of an export
// is not declared anywhere, so DecodeFile tries a fixed list of encodings and keeps the
// first one that yields the expected header.
//
// Parsing never fails on a single row. Rows with an unusable accounting date or amount
// are counted as discarded and left out of the result.
package ingest

package models

// FdnListResponse is returned by GET /fdn.
type FdnListResponse struct {
	Entries []FdnEntry `json:"entries"`
}

// InsertFdnResponse carries the record index assigned by the modem.
type InsertFdnResponse struct {
	Index int `json:"index"`
}

// ModemListResponse is returned by GET /modems.
type ModemListResponse struct {
	Modems []Status `json:"modems"`
}

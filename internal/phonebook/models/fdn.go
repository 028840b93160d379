package models

// FdnEntry is one fixed dialing number record. Index is assigned by the modem.
type FdnEntry struct {
	Index  int    `json:"index" yaml:"index"`
	Name   string `json:"name" yaml:"name"`
	Number string `json:"number" yaml:"number"`
}

// ExportState tracks the export session of one instance.
type ExportState string

const (
	ExportIdle       ExportState = "idle"
	ExportInProgress ExportState = "in_progress"
	ExportCached     ExportState = "cached"
)

// FdnState tracks whether the FDN list has been read from the SIM.
type FdnState string

const (
	FdnUnread FdnState = "unread"
	FdnCached FdnState = "cached"
)

// Status is a point-in-time view of an instance.
type Status struct {
	ModemID       string      `json:"modem_id"`
	Driver        string      `json:"driver"`
	Export        ExportState `json:"export"`
	ExportStorage string      `json:"export_storage,omitempty"`
	Fdn           FdnState    `json:"fdn"`
	FdnEntries    int         `json:"fdn_entries"`
	Pending       string      `json:"pending,omitempty"`
}

package models

// Summary holds the batch counters
type Summary struct {
	TotalIntervals        int            `json:"totalIntervals"`
	TotalRows             int            `json:"totalRows"` // data rows read from usable files
	ValidRows             int            `json:"validRows"` // rows that survived row-level filtering
	FilesProcessed        int            `json:"filesProcessed"`
	StatusCounts          map[string]int `json:"statusCounts"` // intervals per raw navstatus code
	AnchoredIntervals     int            `json:"anchoredIntervals"`
	ManeuveringIntervals  int            `json:"maneuveringIntervals"`
	TransitIntervals      int            `json:"transitIntervals"`
	TotalCoordinatePoints int            `json:"totalCoordinatePoints"`
}

// FileStat records how many data rows a usable file contributed
type FileStat struct {
	File string `json:"file"`
	Rows int    `json:"rows"`
}

// ProcessingMeta carries per-file diagnostics
type ProcessingMeta struct {
	ProcessedFiles []FileStat `json:"processedFiles"`
	Errors         []string   `json:"errors"`
}

// AnalysisData is the payload of a successful batch
type AnalysisData struct {
	Intervals  []Interval `json:"intervals"`
	Summary    Summary    `json:"summary"`
	Journeys   []Journey  `json:"journeys"`
	Routes     []Route    `json:"routes"`
	Activities []Activity `json:"activities"`
}

// AnalysisResult is the boundary contract consumed by charts, maps and tables
type AnalysisResult struct {
	Success bool            `json:"success"`
	Data    *AnalysisData   `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Meta    *ProcessingMeta `json:"meta,omitempty"`
}

// RawDataResult is the normalized-rows export
type RawDataResult struct {
	Success bool            `json:"success"`
	Data    []RawRow        `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Meta    *ProcessingMeta `json:"meta,omitempty"`
}

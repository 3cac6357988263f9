package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // รายละเอียดของ Error
}

// TrackResponse is what the collection endpoint replies with. Processing
// errors surface here as success=false, never as a transport failure.
type TrackResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	OrderID string `json:"orderId,omitempty"`
	Visits  int64  `json:"visits,omitempty"`
}

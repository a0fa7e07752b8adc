package models

// Transport modes for travel segments.
const (
	TransportOwnVehicle      = "own-vehicle"
	TransportEmployerVehicle = "employer-vehicle"
	TransportEmployerHigher  = "employer-vehicle-higher-rate"
	TransportPublicTransit   = "public-transit"
	TransportOnFoot          = "on-foot"
	TransportBicycle         = "bicycle"
)

// Report submission states.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// IsVehicleMode reports whether the mode bills kilometers against a km rate.
func IsVehicleMode(mode string) bool {
	switch mode {
	case TransportOwnVehicle, TransportEmployerVehicle, TransportEmployerHigher:
		return true
	default:
		return false
	}
}

// FileAttachment is a reference to an already-uploaded file. Upload and
// storage live elsewhere; only presence and metadata matter here.
type FileAttachment struct {
	ID         string `json:"id"`
	FileName   string `json:"fileName"`
	FileSize   int64  `json:"fileSize"`
	FileType   string `json:"fileType"`
	UploadedAt string `json:"uploadedAt"`
	UploadedBy string `json:"uploadedBy"`
	URL        string `json:"url,omitempty"`
	Rotation   int    `json:"rotation,omitempty"`
}

// TravelSegment is one leg of travel on the execution date. Order among
// segments is significant and must survive round-trips.
type TravelSegment struct {
	ID            string           `json:"id"`
	Date          string           `json:"date"`      // YYYY-MM-DD
	StartTime     string           `json:"startTime"` // HH:MM
	EndTime       string           `json:"endTime"`   // HH:MM
	StartPlace    string           `json:"startPlace"`
	EndPlace      string           `json:"endPlace"`
	TransportType string           `json:"transportType"`
	Kilometers    float64          `json:"kilometers"`  // vehicle modes only
	TicketCosts   float64          `json:"ticketCosts"` // public transit only
	Attachments   []FileAttachment `json:"attachments"`
}

// Accommodation is one night of lodging paid by a single member slot.
type Accommodation struct {
	ID           string           `json:"id"`
	Place        string           `json:"place"`
	Facility     string           `json:"facility"`
	Date         string           `json:"date"`
	Amount       float64          `json:"amount"`
	PaidByMember int              `json:"paidByMember"` // slot 1-3
	Attachments  []FileAttachment `json:"attachments"`
}

// AdditionalExpense is a miscellaneous dated expense paid by a single member slot.
type AdditionalExpense struct {
	ID           string           `json:"id"`
	Description  string           `json:"description"`
	Date         string           `json:"date"`
	Amount       float64          `json:"amount"`
	PaidByMember int              `json:"paidByMember"` // slot 1-3
	Attachments  []FileAttachment `json:"attachments"`
}

// TimItemStatus records the condition of one plate or arrow on a TIM.
type TimItemStatus struct {
	ItemID           string `json:"itemId"`
	Status           int    `json:"status"` // 1 new, 2 sound, 3 failing, 4 missing
	YearOfProduction int    `json:"yearOfProduction,omitempty"`
	ArrowOrientation string `json:"arrowOrientation,omitempty"` // L / P
	Comment          string `json:"comment,omitempty"`
}

// TimReport is the condition report for one trail-information marker.
type TimReport struct {
	TimID              string           `json:"timId"`
	StructuralComment  string           `json:"structuralComment"`
	StructuralPhotos   []FileAttachment `json:"structuralAttachments"`
	CenterRuleOK       *bool            `json:"centerRuleCompliant,omitempty"`
	CenterRuleComment  string           `json:"centerRuleComment,omitempty"`
	ItemStatuses       []TimItemStatus  `json:"itemStatuses"`
	GeneralComment     string           `json:"generalComment,omitempty"`
	Photos             []FileAttachment `json:"photos"`
}

// PartAData is the logistics/expense section of a report.
type PartAData struct {
	ExecutionDate       string              `json:"executionDate"` // YYYY-MM-DD
	TravelSegments      []TravelSegment     `json:"travelSegments"`
	PrimaryDriver       string              `json:"primaryDriver"`
	VehicleRegistration string              `json:"vehicleRegistration"`
	HigherKmRate        bool                `json:"higherKmRate"`
	Accommodations      []Accommodation     `json:"accommodations"`
	AdditionalExpenses  []AdditionalExpense `json:"additionalExpenses"`
	PaymentRedirects    map[int]int         `json:"paymentRedirects"` // payer slot -> payee slot
}

// PartBData is the route/marker activity section of a report.
type PartBData struct {
	TimReports       map[string]TimReport `json:"timReports"` // key = TIM id
	RouteComment     string               `json:"routeComment"`
	RouteAttachments []FileAttachment     `json:"routeAttachments,omitempty"`
}

// Report is the aggregate submitted against an assignment by one user.
// Completion flags are always derived, never set by the client.
type Report struct {
	ID             int64                    `json:"id"`
	AssignmentID   int64                    `json:"assignmentId"`
	AssignmentNo   string                   `json:"assignmentNumber"`
	UserID         int64                    `json:"userId"`
	Leader         bool                     `json:"leader"`
	DataA          PartAData                `json:"dataA"`
	DataB          PartBData                `json:"dataB"`
	PartACompleted bool                     `json:"partACompleted"`
	PartBCompleted bool                     `json:"partBCompleted"`
	Calculation    *CompensationCalculation `json:"calculation,omitempty"`
	Status         string                   `json:"status"`
	SubmittedAt    string                   `json:"submittedAt,omitempty"`
	CreatedAt      string                   `json:"createdAt,omitempty"`
	UpdatedAt      string                   `json:"updatedAt,omitempty"`
}

// Editable reports whether the draft-upsert path may still mutate the report.
func (r Report) Editable() bool {
	return r.Status == "" || r.Status == StatusDraft
}

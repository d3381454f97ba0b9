package listing

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Bounds on attached media per submission.
const (
	MaxImages    = 5
	MaxDocuments = 5
)

// Draft carries the registration wizard's field values before submission.
// Numeric fields stay strings here; they are parsed into numbers (or nil
// when empty) only when the final record is composed.
type Draft struct {
	Manufacturer   string `json:"manufacturer" form:"manufacturer"`
	ModelName      string `json:"modelName" form:"modelName"`
	EquipmentTitle string `json:"equipmentTitle" form:"equipmentTitle"`
	Category       string `json:"category" form:"category"`
	SubCategory    string `json:"subCategory" form:"subCategory"`
	Year           string `json:"year" form:"year"`
	OperatingHours string `json:"operatingHours" form:"operatingHours"`
	SerialNumber   string `json:"serialNumber" form:"serialNumber"`
	Condition      string `json:"condition" form:"condition"`
	LocationCity   string `json:"locationCity" form:"locationCity"`
	LocationState  string `json:"locationState" form:"locationState"`
	LocationZip    string `json:"locationZip" form:"locationZip"`
	AskingPrice    string `json:"askingPrice" form:"askingPrice"`
	DailyRate      string `json:"dailyRate" form:"dailyRate"`
	Description    string `json:"description" form:"description"`
	SellerName     string `json:"sellerName" form:"sellerName"`
	SellerEmail    string `json:"sellerEmail" form:"sellerEmail"`
	CompanyName    string `json:"companyName" form:"companyName"`
}

// MediaFile is one attached binary, opened lazily so a retried submission
// re-reads from the start.
type MediaFile struct {
	Filename    string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// MediaBundle groups the attachments of one submission.
type MediaBundle struct {
	Images    []MediaFile
	Documents []MediaFile
	Video     *MediaFile
}

// Validate checks the draft's required fields and numeric values.
func (d Draft) Validate() error {
	verr := &ValidationError{}

	required := []struct {
		name, value string
	}{
		{"manufacturer", d.Manufacturer},
		{"modelName", d.ModelName},
		{"category", d.Category},
		{"serialNumber", d.SerialNumber},
		{"condition", d.Condition},
		{"locationCity", d.LocationCity},
		{"locationState", d.LocationState},
		{"locationZip", d.LocationZip},
		{"description", d.Description},
		{"sellerName", d.SellerName},
		{"sellerEmail", d.SellerEmail},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			verr.Missing = append(verr.Missing, f.name)
		}
	}

	numeric := []struct {
		name, value string
		isInt       bool
	}{
		{"year", d.Year, true},
		{"operatingHours", d.OperatingHours, true},
		{"askingPrice", d.AskingPrice, false},
		{"dailyRate", d.DailyRate, false},
	}
	for _, f := range numeric {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		var err error
		if f.isInt {
			_, err = strconv.Atoi(strings.TrimSpace(f.value))
		} else {
			_, err = strconv.ParseFloat(strings.TrimSpace(f.value), 64)
		}
		if err != nil {
			verr.Invalid = append(verr.Invalid, f.name)
		}
	}

	if verr.empty() {
		return nil
	}
	return verr
}

// Validate checks the attachment bounds.
func (b MediaBundle) Validate() error {
	verr := &ValidationError{}
	if len(b.Images) == 0 {
		verr.Missing = append(verr.Missing, "images")
	}
	if len(b.Images) > MaxImages {
		verr.Invalid = append(verr.Invalid, fmt.Sprintf("images (max %d)", MaxImages))
	}
	if len(b.Documents) > MaxDocuments {
		verr.Invalid = append(verr.Invalid, fmt.Sprintf("documents (max %d)", MaxDocuments))
	}
	if verr.empty() {
		return nil
	}
	return verr
}

// ParseOptionalInt parses a free-text numeric field: empty input yields nil,
// anything else must be a valid integer.
func ParseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ParseOptionalFloat parses a free-text numeric field: empty input yields
// nil, anything else must be a valid number.
func ParseOptionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

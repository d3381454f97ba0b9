package models

import "time"

// Condition values accepted for a listed equipment.
const (
	ConditionNew            = "New"
	ConditionUsed           = "Used"
	ConditionWellMaintained = "Well-Maintained"
	ConditionRefurbished    = "Refurbished"
)

// Operational status values shown on the owner dashboard. An empty
// currentStatus is treated as Available.
const (
	EquipmentAvailable   = "Available"
	EquipmentRented      = "Rented"
	EquipmentMaintenance = "Maintenance"
)

// Review pipeline status assigned to every new listing.
const ListingUnderReview = "under_review"

// Equipment is a persisted listing available for rent and/or sale.
// Numeric fields entered as free text during registration are stored as
// numbers, or nil when the field was left empty.
type Equipment struct {
	ID               string    `bson:"id" json:"id"`
	Manufacturer     string    `bson:"manufacturer" json:"manufacturer"`
	ModelName        string    `bson:"modelName" json:"modelName"`
	EquipmentTitle   string    `bson:"equipmentTitle" json:"equipmentTitle,omitempty"`
	Category         string    `bson:"category" json:"category"`
	SubCategory      string    `bson:"subCategory" json:"subCategory,omitempty"`
	Year             *int      `bson:"year" json:"year"`
	OperatingHours   *int      `bson:"operatingHours" json:"operatingHours"`
	SerialNumber     string    `bson:"serialNumber" json:"serialNumber"`
	Condition        string    `bson:"condition" json:"condition"`
	LocationCity     string    `bson:"locationCity" json:"locationCity"`
	LocationState    string    `bson:"locationState" json:"locationState"`
	LocationZip      string    `bson:"locationZip" json:"locationZip"`
	AskingPrice      *float64  `bson:"askingPrice" json:"askingPrice"`
	DailyRate        *float64  `bson:"dailyRate" json:"dailyRate"`
	Description      string    `bson:"description" json:"description"`
	SellerName       string    `bson:"sellerName" json:"sellerName"`
	SellerEmail      string    `bson:"sellerEmail" json:"sellerEmail"`
	CompanyName      string    `bson:"companyName" json:"companyName,omitempty"`
	ImageURLs        []string  `bson:"imageUrls" json:"imageUrls"`
	DocumentURLs     []string  `bson:"documentUrls" json:"documentUrls,omitempty"`
	VideoURL         string    `bson:"videoUrl" json:"videoUrl,omitempty"`
	OwnerPhoneNumber string    `bson:"ownerPhoneNumber" json:"ownerPhoneNumber"`
	OwnerUID         string    `bson:"ownerUid" json:"ownerUid"`
	Status           string    `bson:"status" json:"status"`
	CurrentStatus    string    `bson:"currentStatus,omitempty" json:"currentStatus,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

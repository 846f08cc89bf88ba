package eldrecord

type Carrier struct {
	ID           string      `json:"_id" bson:"_id"`
	Name         string      `json:"name" bson:"name"`
	DOTNumber    string      `json:"dotNumber" bson:"dotNumber"`
	MCNumber     string      `json:"mcNumber" bson:"mcNumber"`
	BusinessType string      `json:"businessType" bson:"businessType"`
	Address      Address     `json:"address" bson:"address"`
	ContactInfo  ContactInfo `json:"contactInfo" bson:"contactInfo"`
	IsActive     bool        `json:"isActive" bson:"isActive"`
	SafetyRating string      `json:"safetyRating" bson:"safetyRating"`
}

type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zipCode"`
	Country string `json:"country" bson:"country"`
}

type ContactInfo struct {
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email" bson:"email"`
	Website string `json:"website" bson:"website"`
}

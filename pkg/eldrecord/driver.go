package eldrecord

type Driver struct {
	ID                   string               `json:"_id" bson:"_id"`
	CarrierID            string               `json:"carrierId" bson:"carrierId"`
	FirstName            string               `json:"firstName" bson:"firstName"`
	LastName             string               `json:"lastName" bson:"lastName"`
	LicenseNumber        string               `json:"licenseNumber" bson:"licenseNumber"`
	LicenseState         string               `json:"licenseState" bson:"licenseState"`
	LicenseExpiration    string               `json:"licenseExpiration" bson:"licenseExpiration"`
	ELDUsername          string               `json:"eldUsername" bson:"eldUsername"`
	Status               string               `json:"status" bson:"status"`
	MedicalCertification MedicalCertification `json:"medicalCertification" bson:"medicalCertification"`
}

type MedicalCertification struct {
	CertificationType string `json:"certificationType" bson:"certificationType"`
	ExpirationDate    string `json:"expirationDate" bson:"expirationDate"`
}

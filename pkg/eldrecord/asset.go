package eldrecord

type Asset struct {
	ID             string              `json:"_id" bson:"_id"`
	CarrierID      string              `json:"carrierId" bson:"carrierId"`
	Type           string              `json:"type" bson:"type"`
	VehicleNumber  string              `json:"vehicleNumber" bson:"vehicleNumber"`
	VIN            string              `json:"vin" bson:"vin"`
	Year           int                 `json:"year" bson:"year"`
	Make           string              `json:"make" bson:"make"`
	Model          string              `json:"model" bson:"model"`
	ELDDeviceID    string              `json:"eldDeviceId" bson:"eldDeviceId"`
	Status         string              `json:"status" bson:"status"`
	Specifications AssetSpecifications `json:"specifications" bson:"specifications"`
}

type AssetSpecifications struct {
	GrossVehicleWeight int    `json:"grossVehicleWeight" bson:"grossVehicleWeight"`
	EngineType         string `json:"engineType" bson:"engineType"`
	FuelCapacity       int    `json:"fuelCapacity" bson:"fuelCapacity"`
}

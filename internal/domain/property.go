package domain

type Property struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	OwnerID     int32   `json:"owner_id"`
	OperatorID  int32   `json:"operator_id"`
	NightlyRate float64 `json:"nightly_rate"`
	Rating      float64 `json:"rating"`
	Reviews     int32   `json:"reviews"`
	Bedrooms    int32   `json:"bedrooms"`
	Baths       int32   `json:"baths"`
	Guests      int32   `json:"guests"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
}

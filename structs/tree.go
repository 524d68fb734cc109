package structs

import "time"

type CoordinatesRequest struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

type CreateTreeRequest struct {
	Name        string              `json:"name" binding:"required"`
	Species     string              `json:"species" binding:"required"`
	Location    string              `json:"location" binding:"required"`
	PlantDate   *time.Time          `json:"plantDate"`
	Height      float64             `json:"height" binding:"min=0"`
	Diameter    float64             `json:"diameter" binding:"min=0"`
	Notes       string              `json:"notes"`
	ImageURL    string              `json:"imageUrl"`
	Coordinates *CoordinatesRequest `json:"coordinates"`
}

type UpdateTreeRequest struct {
	Name     string   `json:"name"`
	Species  string   `json:"species"`
	Location string   `json:"location"`
	Height   *float64 `json:"height" binding:"omitempty,min=0"`
	Diameter *float64 `json:"diameter" binding:"omitempty,min=0"`
	Notes    *string  `json:"notes"`
	ImageURL *string  `json:"imageUrl"`
}

type WeatherRequest struct {
	Temperature   *float64 `json:"temperature" binding:"omitempty,min=-50,max=60"`
	Humidity      *float64 `json:"humidity" binding:"omitempty,min=0,max=100"`
	Precipitation *float64 `json:"precipitation" binding:"omitempty,min=0"`
	Conditions    string   `json:"conditions" binding:"omitempty,oneof=sunny cloudy rainy snowy stormy foggy"`
}

type MaterialRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"min=0"`
	Unit     string  `json:"unit" binding:"omitempty,oneof=kg g L mL pieces bags"`
}

type CreateCareRecordRequest struct {
	TreeID       string            `json:"treeId" binding:"required"`
	Date         *time.Time        `json:"date"`
	Action       string            `json:"action" binding:"required,oneof=watering fertilizing pruning pest_control other"`
	Notes        string            `json:"notes"`
	HealthRating int               `json:"healthRating" binding:"omitempty,min=1,max=5"`
	Images       []string          `json:"images"`
	Weather      *WeatherRequest   `json:"weather"`
	Duration     int               `json:"duration" binding:"omitempty,min=0"`
	Materials    []MaterialRequest `json:"materials" binding:"omitempty,dive"`
}

type UpdateCareRecordRequest struct {
	Action       string     `json:"action" binding:"omitempty,oneof=watering fertilizing pruning pest_control other"`
	Notes        *string    `json:"notes"`
	HealthRating *int       `json:"healthRating" binding:"omitempty,min=1,max=5"`
	Date         *time.Time `json:"date"`
}

type CreateGrowthMeasurementRequest struct {
	TreeID        string     `json:"treeId" binding:"required"`
	Date          *time.Time `json:"date"`
	Height        float64    `json:"height" binding:"required,min=0"`
	Diameter      float64    `json:"diameter" binding:"required,min=0"`
	CanopySpread  float64    `json:"canopySpread" binding:"omitempty,min=0"`
	TrunkDiameter float64    `json:"trunkDiameter" binding:"omitempty,min=0"`
	Notes         string     `json:"notes"`
}

type CustomFrequencyRequest struct {
	Days   int `json:"days" binding:"omitempty,min=1"`
	Weeks  int `json:"weeks" binding:"omitempty,min=0"`
	Months int `json:"months" binding:"omitempty,min=0"`
}

type CreateReminderRequest struct {
	TreeID          string                  `json:"treeId" binding:"required"`
	Type            string                  `json:"type" binding:"required,oneof=watering fertilizing pruning health_check"`
	DueDate         time.Time               `json:"dueDate" binding:"required"`
	Priority        string                  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Notes           string                  `json:"notes"`
	Frequency       string                  `json:"frequency" binding:"omitempty,oneof=daily weekly monthly seasonal custom"`
	CustomFrequency *CustomFrequencyRequest `json:"customFrequency"`
	IsRecurring     *bool                   `json:"isRecurring"`
}

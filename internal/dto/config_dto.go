package dto

type ConfigurationUpdate struct {
	BusinessName string `json:"business_name" validate:"required,max=200"`
}

type ConfigurationResponse struct {
	BusinessName string `json:"business_name"`
}

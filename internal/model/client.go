package model

// Client represents a patient record
type Client struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	SecondSurname string `json:"secondSurname"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	DNI           string `json:"dni"`
	Obs           string `json:"obs"`
}

// ClientRequest carries the payload for creating or updating a client
type ClientRequest struct {
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	SecondSurname string `json:"secondSurname"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	DNI           string `json:"dni"`
	Obs           string `json:"obs"`
}

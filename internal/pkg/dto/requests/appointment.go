package requests

type CreateAppointment struct {
	DoctorID    string `json:"doctorId" validate:"required"`
	DoctorName  string `json:"doctorName" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required,datetime=15:04"`
	Reason      string `json:"reason" validate:"required"`
	SessionData string `json:"-"`
}

type DecideAppointment struct {
	Status        string `json:"status" validate:"required,oneof=approved rejected"`
	AppointmentID string `json:"-"`
	SessionData   string `json:"-"`
}

type CancelAppointment struct {
	AppointmentID string
	SessionData   string
}

type FindAllAppointments struct {
	SessionData string
}

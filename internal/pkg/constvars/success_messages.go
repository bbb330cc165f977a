package constvars

const (
	RegisterUserSuccessMessage         = "User registered successfully"
	LoginUserSuccessMessage            = "Logged in successfully"
	LogoutUserSuccessMessage           = "Logged out successfully"
	FindAllDoctorsSuccessMessage       = "Doctors retrieved successfully"
	CreateAppointmentSuccessMessage    = "Appointment created successfully"
	FindAllAppointmentsSuccessMessage  = "Appointments retrieved successfully"
	DecideAppointmentSuccessMessage    = "Appointment updated successfully"
	CancelAppointmentSuccessMessage    = "Appointment cancelled successfully"
	FindAllNotificationsSuccessMessage = "Notifications retrieved successfully"
	MarkNotificationReadSuccessMessage = "Notification marked as read"
)

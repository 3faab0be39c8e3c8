package requests

type LoginUser struct {
	Username string `form:"username" label:"Username" validate:"required"`
	Password string `form:"password" label:"Password" validate:"required"`
}

type RegisterUser struct {
	Username string `json:"username" form:"username" label:"Username" validate:"required,min=3,max=50"`
	Password string `json:"password" form:"password" label:"Password" validate:"required,min=6"`
	Email    string `json:"email" form:"email" label:"Email" validate:"required,email"`
	Role     string `json:"role" form:"role" label:"Role" validate:"required,oneof=PATIENT DOCTOR"`
}

package models

type User struct {
	UID            string `json:"uid"`
	DisplayName    string `json:"displayName"`
	Email          string `json:"email"`
	PhotoURL       string `json:"photoURL"`
	Bio            string `json:"bio"`
	CreatedAt      string `json:"createdAt"`
	KitchenFriends int    `json:"kitchenFriends"`
	Followers      int    `json:"followers"`
}

type CreateUser struct {
	UID         string `json:"uid" validate:"required,notblank"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhotoURL    string `json:"photoURL"`
	Bio         string `json:"bio"`
}

// UpdateUser lists the fields a profile edit may change. The uid and the
// follow counters are not among them.
type UpdateUser struct {
	DisplayName *string `json:"displayName"`
	Email       *string `json:"email" validate:"omitnil,optemail"`
	PhotoURL    *string `json:"photoURL"`
	Bio         *string `json:"bio"`
}

func (u UpdateUser) Apply(usr *User) {
	if u.DisplayName != nil {
		usr.DisplayName = *u.DisplayName
	}
	if u.Email != nil {
		usr.Email = *u.Email
	}
	if u.PhotoURL != nil {
		usr.PhotoURL = *u.PhotoURL
	}
	if u.Bio != nil {
		usr.Bio = *u.Bio
	}
}

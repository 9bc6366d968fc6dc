package domain

// Client is the hiring side of an engagement. One-to-one with a user account.
type Client struct {
	ID              int64  `json:"id" bson:"_id"`
	OwnerUserID     int64  `json:"owner_user_id" bson:"owner_user_id"`
	FullName        string `json:"full_name" bson:"full_name"`
	Company         string `json:"company,omitempty" bson:"company,omitempty"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty" bson:"profile_photo_url,omitempty"`
}

// Freelancer is the working side of an engagement. Categories are shared
// reference data and are held by id only.
type Freelancer struct {
	ID              int64   `json:"id" bson:"_id"`
	OwnerUserID     int64   `json:"owner_user_id" bson:"owner_user_id"`
	FullName        string  `json:"full_name" bson:"full_name"`
	Bio             string  `json:"bio,omitempty" bson:"bio,omitempty"`
	Skills          string  `json:"skills,omitempty" bson:"skills,omitempty"`
	CategoryIDs     []int64 `json:"category_ids" bson:"category_ids"`
	Whatsapp        string  `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	ContactEmail    string  `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	ProfilePhotoURL string  `json:"profile_photo_url,omitempty" bson:"profile_photo_url,omitempty"`
}

// Category is shared reference data, unique by name.
type Category struct {
	ID   int64  `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

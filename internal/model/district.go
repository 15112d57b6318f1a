package model

// District is a territorial unit that departments belong to.
type District struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// DistrictInput carries the caller-supplied fields for creating a district.
type DistrictInput struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// DistrictPatch is a partial update; nil fields are left untouched.
type DistrictPatch struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

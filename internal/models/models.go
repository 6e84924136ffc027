package models

// Identity is the resolved caller for one request. It is derived from the
// Cloudflare Access email header plus the lecturer map and admin list, and
// is never stored.
type Identity struct {
	Email     string
	TeacherID string // empty when the caller has no lecturer record
	IsAdmin   bool
}

type SessionResponse struct {
	Email     string  `json:"email"`
	TeacherID *string `json:"teacherId"`
	IsAdmin   bool    `json:"isAdmin"`
}

func (i Identity) ToResponse() SessionResponse {
	resp := SessionResponse{Email: i.Email, IsAdmin: i.IsAdmin}
	if i.TeacherID != "" {
		id := i.TeacherID
		resp.TeacherID = &id
	}
	return resp
}

// RawResponse is one record as downloaded from the Qualtrics export file.
// Everything of interest sits under "values"; the surrounding fields are
// export bookkeeping and are dropped during normalization.
type RawResponse struct {
	Values map[string]any `json:"values"`
}

// Response is a normalized survey response: the raw record's values spread
// flat, with canonical CourseCode and teacherId fields resolved on top.
type Response map[string]any

func (r Response) CourseCode() string {
	code, _ := r["CourseCode"].(string)
	return code
}

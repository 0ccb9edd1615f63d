package model

// Patient is a demographic record keyed by the national social security
// number (NSS). Dates travel as opaque YYYY-MM-DD strings end to end; the
// storage layer's date columns are the only place they are type-checked.
type Patient struct {
	ID        int64  `db:"id" json:"id"`
	NSS       string `db:"numero_securite_sociale" json:"numero_securite_sociale"`
	LastName  string `db:"nom" json:"nom"`
	FirstName string `db:"prenom" json:"prenom"`
	BirthDate string `db:"date_naissance" json:"date_naissance"`
	Address   string `db:"adresse" json:"adresse"`
	Phone     string `db:"telephone" json:"telephone"`
	Email     string `db:"email" json:"email"`
}

// CreatePatientRequest mirrors the POST /patients body. Absent fields decode
// to empty strings; the API performs no format validation on them.
type CreatePatientRequest struct {
	NSS       string `json:"numero_securite_sociale"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	BirthDate string `json:"date_naissance"`
	Address   string `json:"adresse"`
	Phone     string `json:"telephone"`
	Email     string `json:"email"`
}

func (r *CreatePatientRequest) ToPatient() *Patient {
	return &Patient{
		NSS:       r.NSS,
		LastName:  r.LastName,
		FirstName: r.FirstName,
		BirthDate: r.BirthDate,
		Address:   r.Address,
		Phone:     r.Phone,
		Email:     r.Email,
	}
}

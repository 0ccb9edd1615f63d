package model

// DefaultDescription is stored when a document is submitted without one.
// The substitution happens in the service layer, not as a column default.
const DefaultDescription = "No description provided"

// PatientDocument is a clinical document summary attached to one patient.
// The owning patient's NSS is denormalized onto the row alongside the
// foreign key.
type PatientDocument struct {
	ID          int64  `db:"id" json:"id"`
	PatientID   int64  `db:"patient_id" json:"patient_id"`
	NSS         string `db:"numero_securite_sociale" json:"numero_securite_sociale"`
	Type        string `db:"type_document" json:"type_document"`
	Description string `db:"description" json:"description"`
	Date        string `db:"date_document" json:"date_document"`
}

// PatientDocumentDetail is a document joined with the owning patient's name,
// the shape returned by every document read path.
type PatientDocumentDetail struct {
	PatientDocument
	LastName  string `db:"nom" json:"nom"`
	FirstName string `db:"prenom" json:"prenom"`
}

// CreateDocumentRequest mirrors the POST /patients/{nss}/documents body.
type CreateDocumentRequest struct {
	Type        string `json:"type_document"`
	Description string `json:"description"`
	Date        string `json:"date_document"`
}

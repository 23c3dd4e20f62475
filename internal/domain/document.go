package domain

// DocumentType tags each extracted claim document with its category.
type DocumentType string

const (
	DocumentTypeBill             DocumentType = "bill"
	DocumentTypeDischargeSummary DocumentType = "discharge_summary"
	DocumentTypeIDCard           DocumentType = "id_card"
)

// RequiredDocumentTypes lists the document types every complete claim must
// include, in the order they are reported when missing.
var RequiredDocumentTypes = []DocumentType{
	DocumentTypeBill,
	DocumentTypeDischargeSummary,
	DocumentTypeIDCard,
}

// UnknownValue is the sentinel substituted when extraction cannot produce a
// real value for an identifier field.
const UnknownValue = "UNKNOWN"

// Document is the closed variant set of extractable claim documents.
// Consumers dispatch with a type switch on the concrete type; Kind exists so
// callers that only need the tag do not have to.
type Document interface {
	Kind() DocumentType
}

// BillDocument holds data extracted from a hospital bill.
type BillDocument struct {
	Type          DocumentType `json:"type"`
	HospitalName  string       `json:"hospital_name"`
	TotalAmount   float64      `json:"total_amount"`
	DateOfService string       `json:"date_of_service"`
	PatientName   string       `json:"patient_name,omitempty"`
	BillItems     []string     `json:"bill_items,omitempty"`
}

func (BillDocument) Kind() DocumentType { return DocumentTypeBill }

// DischargeSummaryDocument holds data extracted from a hospital discharge summary.
type DischargeSummaryDocument struct {
	Type           DocumentType `json:"type"`
	PatientName    string       `json:"patient_name"`
	Diagnosis      string       `json:"diagnosis"`
	AdmissionDate  string       `json:"admission_date"`
	DischargeDate  string       `json:"discharge_date"`
	TreatingDoctor string       `json:"treating_doctor,omitempty"`
	Procedures     []string     `json:"procedures,omitempty"`
}

func (DischargeSummaryDocument) Kind() DocumentType { return DocumentTypeDischargeSummary }

// IDCardDocument holds data extracted from an insurance ID card.
type IDCardDocument struct {
	Type              DocumentType `json:"type"`
	PatientName       string       `json:"patient_name"`
	PolicyNumber      string       `json:"policy_number"`
	MemberID          string       `json:"member_id"`
	InsuranceProvider string       `json:"insurance_provider,omitempty"`
}

func (IDCardDocument) Kind() DocumentType { return DocumentTypeIDCard }

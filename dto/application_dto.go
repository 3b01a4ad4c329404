package dto

import "encoding/json"

// CreateApplicationDTO carries the fields an applicant submits. Unknown keys
// are preserved in Extra and stored alongside the application.
type CreateApplicationDTO struct {
	JobID          string         `json:"jobId" binding:"required"`
	ApplicantEmail string         `json:"applicantEmail" binding:"required"`
	ApplicantName  string         `json:"applicantName"`
	Message        string         `json:"message"`
	Status         string         `json:"status"`
	Extra          map[string]any `json:"-"`
}

func (d *CreateApplicationDTO) UnmarshalJSON(data []byte) error {
	type plain CreateApplicationDTO
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range []string{"jobId", "applicantEmail", "applicantName", "message", "status"} {
		delete(raw, k)
	}
	if len(raw) > 0 {
		p.Extra = raw
	}
	*d = CreateApplicationDTO(p)
	return nil
}

// DecideApplicationDTO drives the approval workflow. Action must be
// "approve" or "reject"; the service validates it after the ownership check.
type DecideApplicationDTO struct {
	Action        string `json:"action"`
	ApproverEmail string `json:"approverEmail"`
}

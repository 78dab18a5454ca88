package models

// Committee is one row of the committee master extract. CandidateID
// is empty for committees not tied to a candidate; RawParty is empty
// when the filing omits an affiliation.
type Committee struct {
	ID          string `json:"id"`
	RawParty    string `json:"rawParty"`
	Party       Party  `json:"party"`
	CandidateID string `json:"candidateId"`
}

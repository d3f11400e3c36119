package entities

type Choice string

const (
	ChoiceAccept     Choice = "accept"
	ChoiceReject     Choice = "reject"
	ChoiceAbstention Choice = "abstention"
)

func (c Choice) Valid() bool {
	switch c {
	case ChoiceAccept, ChoiceReject, ChoiceAbstention:
		return true
	default:
		return false
	}
}

type BallotChoice struct {
	ApplicationID int64
	Choice        Choice
}

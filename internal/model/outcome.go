package model

// Stage names reported in StageOutcome.
const (
	StageInterpret = "interpret"
	StageEmbedding = "embedding"
	StageRetrieve  = "retrieve"
	StageRerank    = "rerank"
	StageAnswer    = "answer"
)

// Stage statuses.
const (
	StatusOK       = "ok"
	StatusFallback = "fallback"
	StatusSkipped  = "skipped"
)

// StageOutcome records how a pipeline stage finished. Reason is empty when Status is ok.
type StageOutcome struct {
	Stage  string `json:"stage"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// OK builds a successful outcome for stage.
func OK(stage string) StageOutcome {
	return StageOutcome{Stage: stage, Status: StatusOK}
}

// Fallback builds a fallback outcome for stage caused by err.
func Fallback(stage string, err error) StageOutcome {
	return StageOutcome{Stage: stage, Status: StatusFallback, Reason: reason(err)}
}

// Skipped builds a skipped outcome for stage caused by err.
func Skipped(stage string, err error) StageOutcome {
	return StageOutcome{Stage: stage, Status: StatusSkipped, Reason: reason(err)}
}

func reason(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

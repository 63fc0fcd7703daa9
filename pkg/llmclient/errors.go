package llmclient

import (
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"

	"github.com/codeready-toolchain/corvid/internal/pipelineerrors"
)

// classifyOpenAIError maps an openai-go error onto the pipeline's
// transient/permanent taxonomy so stage engines never need to inspect
// HTTP status codes themselves.
func classifyOpenAIError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429 || apiErr.StatusCode >= 500:
			return fmt.Errorf("%w: %v", pipelineerrors.ErrTransientExternal, err)
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return fmt.Errorf("%w: %v", pipelineerrors.ErrPermanentExternal, err)
		default:
			return fmt.Errorf("%w: %v", pipelineerrors.ErrPermanentExternal, err)
		}
	}
	return fmt.Errorf("%w: %v", pipelineerrors.ErrTransientExternal, err)
}

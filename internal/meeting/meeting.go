// Package meeting generates join links for staff meetings. The portal only
// hands out links; the conference itself lives on the external service.
package meeting

import (
	"fmt"

	"github.com/google/uuid"
)

type LinkGenerator interface {
	NewLink() (id string, url string)
}

// JitsiLinker builds meet.jit.si style room URLs from random ids.
type JitsiLinker struct {
	BaseURL string
}

func NewJitsiLinker(baseURL string) *JitsiLinker {
	return &JitsiLinker{BaseURL: baseURL}
}

func (j *JitsiLinker) NewLink() (string, string) {
	id := fmt.Sprintf("meeting-%s", uuid.NewString())
	return id, fmt.Sprintf("%s/%s", j.BaseURL, id)
}

package provider

import (
	"fmt"
)

// Caller is the raw command-style surface an external completion source
// exposes: one call taking a command name and an argument, returning an
// arbitrary payload.
type Caller interface {
	Call(command, arg string) (any, error)
}

// CallerProvider adapts a Caller to the Provider interface, validating
// payload shapes. A candidates payload that is not a proper sequence of
// text values discards the provider's whole contribution for the cycle.
type CallerProvider struct {
	name   string
	caller Caller
}

// FromCaller wraps a raw command-style source as a Provider.
func FromCaller(name string, caller Caller) *CallerProvider {
	return &CallerProvider{name: name, caller: caller}
}

func (p *CallerProvider) Name() string { return p.name }

func (p *CallerProvider) Candidates(prefix string) ([]string, error) {
	payload, err := p.caller.Call(CmdCandidates, prefix)
	if err != nil {
		return nil, err
	}
	return candidateList(payload)
}

func (p *CallerProvider) Prefix(input string) (string, error) {
	payload, err := p.caller.Call(CmdPrefix, input)
	if err != nil {
		return "", err
	}
	return textValue(payload)
}

func (p *CallerProvider) Doc(candidate string) (string, error) {
	payload, err := p.caller.Call(CmdDoc, candidate)
	if err != nil {
		return "", err
	}
	return textValue(payload)
}

func (p *CallerProvider) Annotation(candidate string) (string, error) {
	payload, err := p.caller.Call(CmdAnnotation, candidate)
	if err != nil {
		return "", err
	}
	return textValue(payload)
}

// candidateList validates a candidates payload. Accepts []string and []any
// holding only strings; anything else rejects the whole payload.
func candidateList(payload any) ([]string, error) {
	switch v := payload.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("candidate payload holds %T, want string", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("candidate payload is %T, want a string sequence", payload)
	}
}

func textValue(payload any) (string, error) {
	switch v := payload.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("payload is %T, want string", payload)
	}
}

/*
Package server implements msgpack IPC for the aggregate completion frontend.

The server exposes one logical provider over stdin/stdout that answers the
same four commands every registered source answers: candidates, prefix, doc
and annotation. A host editor talks to it with binary msgpack messages, one
request per message, processed synchronously in arrival order.

# IPC

Each request carries an ID, a command and a text argument:

	{"id": "req_001", "cmd": "candidates", "t": "fo", "l": 24}

Candidate responses carry the ranked list with source attribution:

	{"id": "req_001", "s": [{"w": "foo", "src": "words"}, {"w": "foobar", "src": "words"}], "c": 2, "t": 120}

The preinsert command implements the host's pre-insertion hook: it records
the chosen candidate into history-tracked sources and returns the insert
prefix of the owning source, which the host must treat as already typed
before committing the candidate.

Config messages adjust ranking at runtime without restart:

	{"id": "cfg_001", "cmd": "config", "action": "strategy", "v": "score"}
	{"id": "cfg_002", "cmd": "config", "action": "promote", "v": "off"}

Any error or malformed request yields an error response; no failure is fatal
to the server loop.
*/
package server

// Request is one incoming IPC message.
type Request struct {
	ID      string `msgpack:"id"`
	Command string `msgpack:"cmd"`
	Text    string `msgpack:"t,omitempty"`
	Limit   int    `msgpack:"l,omitempty"`
	Action  string `msgpack:"action,omitempty"`
	Value   string `msgpack:"v,omitempty"`
}

// Suggestion is one ranked candidate with source attribution.
type Suggestion struct {
	Text       string `msgpack:"w"`
	Source     string `msgpack:"src,omitempty"`
	Annotation string `msgpack:"a,omitempty"`
}

// CandidatesResponse answers the candidates command.
type CandidatesResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// TextResponse answers prefix, doc, annotation and preinsert commands.
type TextResponse struct {
	ID   string `msgpack:"id"`
	Text string `msgpack:"txt"`
}

// StatusResponse answers config and health commands.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

package types

import "fmt"

// RequestKind discriminates the three ways a location can be requested
type RequestKind int

const (
	// CurrentDirectory uses the process working directory as-is
	CurrentDirectory RequestKind = iota
	// Segment joins the argument onto the working directory
	Segment
	// ProgramSearch asks the locate facility where a program lives
	ProgramSearch
)

// String returns the string representation of the kind
func (k RequestKind) String() string {
	switch k {
	case CurrentDirectory:
		return "cwd"
	case Segment:
		return "segment"
	case ProgramSearch:
		return "search"
	default:
		return "unknown"
	}
}

// LocationRequest is the caller's intent. Text is empty for CurrentDirectory.
type LocationRequest struct {
	Kind RequestKind
	Text string
}

// CurrentDirectoryRequest returns a request for the working directory
func CurrentDirectoryRequest() LocationRequest {
	return LocationRequest{Kind: CurrentDirectory}
}

// SegmentRequest returns a request joining segment onto the working directory
func SegmentRequest(segment string) LocationRequest {
	return LocationRequest{Kind: Segment, Text: segment}
}

// ProgramSearchRequest returns a request searching for term
func ProgramSearchRequest(term string) LocationRequest {
	return LocationRequest{Kind: ProgramSearch, Text: term}
}

func (r LocationRequest) String() string {
	if r.Kind == CurrentDirectory {
		return r.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", r.Kind, r.Text)
}

// Candidate is one raw path line reported by the locate facility
type Candidate string

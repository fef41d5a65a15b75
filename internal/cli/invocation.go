package cli

// Token forcing environment (re)creation; never forwarded to the GUI
const SETUP_FLAG = "--venv"

// Invocation is the canonical form of the launcher's argument vector:
// the setup flag, extracted wherever it appears, and every other token
// preserved verbatim and in order for the GUI.
type Invocation struct {
	SetupRequested bool
	Passthrough    []string
}

// Parse partitions the raw argument vector. The match is exact and
// case-sensitive: near misses such as "--venv=x" belong to the GUI.
func Parse(arguments []string) (invocation Invocation) {
	invocation.Passthrough = []string{}
	for _, argument := range arguments {
		if argument == SETUP_FLAG {
			invocation.SetupRequested = true
			continue
		}
		invocation.Passthrough = append(invocation.Passthrough, argument)
	}
	return
}

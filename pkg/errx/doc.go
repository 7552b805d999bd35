// Package errx provides structured, code-based errors for minikube-ctl.
//
// Each error carries:
//   - A stable 5-digit error code (e.g., "72000" for command failures)
//   - A category description (e.g., "Command error")
//   - A user-facing message
//   - Optional structured context (key-value pairs)
//   - Optional cause and base sentinel errors
//
// The first two digits of a code name the domain:
//   - 70xxx: CLI/argument validation errors
//   - 71xxx: Binary presence errors (not installed, not runnable)
//   - 72xxx: Command execution errors
//   - 73xxx: Status output errors
//   - 74xxx: Configuration errors
//   - 75xxx: Kubernetes API probe errors
//
// The last three digits are reserved for subcodes.
//
// Sentinels are declared once with NewSentinel, which records their code so
// that FromSentinel can build a categorized error later:
//
//	var ErrCommandFailed = errx.NewSentinel("command failed", errx.CodeCommand, errx.DescCommand)
//
//	err := errx.FromSentinel(ErrCommandFailed, errx.LookupSentinel, "minikube stop failed", cause).
//		WithContext("binary", "/usr/local/bin/minikube")
//
//	if errors.Is(err, ErrCommandFailed) {
//		fmt.Println(errx.UserString(err))
//	}
package errx

// Package survey implements the BlackIvy onboarding survey.
//
// The survey is an ordered sequence of question pages. The sequence is not
// fixed: the answer to the first page (the gating answer) decides which
// conditional page, if any, follows it. Use Resolve to build the page list
// for a gating answer, and Wizard to walk it while collecting answers.
//
// Dialog wraps a Wizard with the open/close contract a host needs: a fresh
// wizard per open, and a single OnOpenChange(false) once the survey is
// finished or closed.
package survey

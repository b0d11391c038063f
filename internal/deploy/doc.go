// Package deploy publishes the site repository: it stages every change,
// commits with a fixed message and pushes.
//
// A failed commit (usually "nothing to commit") does not stop the deploy;
// existing commits are still pushed. A failed stage or push ends it.
package deploy

package engine

import "fmt"

// BugKey classifies an Interesting Outcome into a grouping key, so that
// distinct root causes are shrunk and reported independently
// (Settings.ReportMultipleBugs) instead of the shrinker's minimization of one
// bug accidentally wandering into another's territory. A panic is keyed on
// its recovered value's dynamic type plus its formatted message; a returned
// error is keyed on its dynamic type plus Error(). This is deliberately
// coarser than the full choice sequence - two candidates that fail for the
// "same reason" via different inputs should still collapse to one bug.
func BugKey(o Outcome) string {
	if o.Panic != nil {
		return fmt.Sprintf("panic:%T:%v", o.Panic, o.Panic)
	}
	if o.Err != nil {
		return fmt.Sprintf("error:%T:%s", o.Err, o.Err.Error())
	}
	return ""
}

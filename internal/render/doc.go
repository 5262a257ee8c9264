// Package render turns fetched Mollie records into terminal output.
//
// Two entry points cover the CLI's needs: RenderList for sequences of
// records and RenderItem for a single record, each in table, JSON, or CSV
// form. Table and CSV views apply a per-resource column projection; JSON
// deliberately bypasses the projection and emits the raw payload so
// consumers always see the full wire data. Both functions are pure: they
// take already-fetched data and return the complete output text.
package render

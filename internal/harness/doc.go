// Package harness drives scenarios against a cycle-accurate simulation of
// the Pong design.
//
// A scenario is a YAML document listing steps: power sequencing, signal
// writes, clock waits, encoder moves, bounded waits, frame captures and
// assertions. Run executes the steps in order against a Backend and returns
// a Result holding the verdict, a per-step trace and every captured frame.
//
// Failures (a timed-out wait, a screen mismatch or a failed assertion) end
// the scenario and are reported in the Result. Anything else, such as an
// unknown signal or a cancelled context, is a harness fault and is returned
// as an error.
//
// All time advances inside awaits; between awaits the harness only reads
// and writes signal values.
package harness

/*

Package remodel -> a guided tour of organizing tests by scenario



Pre Words

This package is teaching material first and production code second.
The domain model inside is intentionally tiny: a remodel Project that walks a fixed list of phases,
and a ProjectManager that answers status based lookups.
There is no hidden complexity in it, and that is the point.
When the subject under test is small enough to keep in your head,
all the attention can go to the way the test suite itself is organized.



What the suite demonstrates

The tests of this module group related cases into scenario blocks and nest them by the behaviour they exercise.
Each exported operation gets its own Describe block,
each distinct starting state gets a When block inside it,
and the individual expectations live in Then blocks at the bottom of the tree.
Reading a failing test name top to bottom should reconstruct the whole scenario
without ever opening the test file.

The same lesson is shown twice on purpose.
The Project and ProjectManager specs use the testcase spec DSL,
while parts of the storage suites use nested testing.T sub tests,
so the structure can be compared across both idioms.

The contracts package takes the idea one step further:
the behaviour specification for the ProjectStorage port is written once,
and every implementation (inmemory, boltstorage) runs the same shared spec.
If you only take away one habit from this repository, take that one.



The domain in one paragraph

A Project is created with a name and starts its life as "not started" with no active phase.
Start puts it "in progress" on the first phase.
AdvancePhase steps through planning, demolition, construction and finishing in order,
and after the last phase the project becomes "completed" with no active phase.
Advancing a project that is not in progress does nothing, ever.
A ProjectManager holds projects in insertion order and can return the ones matching an exact status.

*/
package remodel

/*
Package relay implements the administrative relay contract of FlowSight.

Every privileged mutation of the curation and spotlight registries is
funneled through this single contract: the registries are deployed with
the relay hash as their owner and accept privileged calls from it only,
so all administrative activity is auditable in one place. The relay
itself authenticates a single administrator account, validates the
requested selector against the fixed privileged set of the target
registry and re-dispatches the call. Replacing the
administrator with a voting process later requires changing only this
contract, not the registries.

A fault of the dispatched call is rewrapped into the uniform
"relay execution failed" fault so that registry-specific fault
messages never become part of the administrative surface.

# Contract notifications

AdministratorChanged notification.

	AdministratorChanged:
	  - name: administrator
	    type: Hash160
*/
package relay

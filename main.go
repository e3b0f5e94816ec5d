// SPDX-License-Identifier: MPL-2.0

// ucscgen generates Bioconda packaging recipes for the UCSC Kent
// bioinformatics utilities from the published userApps sources.
package main

import cmd "ucscgen/cmd/ucscgen"

func main() {
	cmd.Execute()
}

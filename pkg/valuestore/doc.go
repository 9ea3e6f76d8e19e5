// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package valuestore holds the values recorded against each option during
a parse: one ordered [ValueList] per [catalog.OptionInfo], source-tagged,
with alias entries forwarding reads and writes to their target.

The store itself knows nothing about argv, environment variables, or
configuration files — it is the landing place every parser (command
line, environment, configuration file) writes into, and the place the
orchestrator reads back out of.
*/
package valuestore

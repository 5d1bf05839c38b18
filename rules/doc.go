// Package rules models the metadata the rule engine exchanges with its rule
// plugins: canonical names, execution priorities, and deprecation status
// with successor rules. Rule bodies stay with the plugins; only descriptors
// live here, parsed from YAML documents provided by the surrounding tool.
package rules

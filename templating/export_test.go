package templating

// Exported aliases for testing internal functions from
// the templating_test package.

// OpenOutputForTest exposes openOutput.
var OpenOutputForTest = openOutput

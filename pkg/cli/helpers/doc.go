// Package helpers holds the pieces shared by kubecd commands: global flag names,
// logging setup and config loading through the DI runtime.
package helpers

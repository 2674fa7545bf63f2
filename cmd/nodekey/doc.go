// Command nodekey resolves, derives and persists the node signing keypair.
package main

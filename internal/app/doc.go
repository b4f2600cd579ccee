// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the generation lifecycle, decoupled from
// any specific entrypoint like a CLI.
//
// One run loads the optional profile, resolves the project metadata,
// generates the workflow document, renders it and writes it out. Nothing is
// written unless every earlier stage succeeded.
package app

// Package models provides shared data models and types for dotnet-gen.
//
// # Project Types
//
// A generated workspace may contain one main project of a fixed archetype:
//   - webapi: ASP.NET Core Web API service
//   - webapp: ASP.NET Core Razor Pages web UI
//   - mvc: ASP.NET Core MVC application
//   - console: console application
//   - none: solution only, no project
//
// Use [ProjectType] and its constants:
//
//	pt := models.ProjectTypeWebAPI
//	if pt.IsValid() && pt.HasProject() {
//	    fmt.Println("dotnet new", pt.Template())
//	}
//
// # Sample Files
//
// [SampleFile] enumerates optional starter files (README, class, interface,
// Dockerfile, Bitbucket pipeline) the user may pick during the wizard.
package models

/*
Package launcher implements the bootstrap front-end of the ACCELA depot
downloader GUI: it prepares the isolated runtime environment the GUI runs
in and then hands the process over to it.

The project has two main source packages:
`cmd`: Main applications, tools and libraries.
`internal`: Private application and library code.
*/
package launcher

// Package account provides the role-tagged Account aggregate shared by the
// customer, driver and administrator portals.
//
// One account type serves all three portals; the Role discriminant scopes every
// query and every access decision. Drivers are only assignable while active,
// and inactive administrators are refused.
package account

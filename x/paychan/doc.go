/*
Package paychan implements bilateral payment channels.

Two participants lock a deposit in a per channel vault account and then
exchange balance updates off the chain. Any participant can start the
closing procedure by submitting the latest state it knows about. The
counterparty is given a dispute window to challenge with a more recent
state, identified by a strictly greater version number. Submitting a
newer initiate restarts the window, so a channel can stay in the
closing phase for as long as the participants keep disputing.

Once the window elapsed anyone can finalize. Finalizing pays out both
balances from the vault, withholds the settlement fee and marks the
channel closed. A closed channel is kept in the database but can never
be used again. The withheld fee remains on the vault account.
*/
package paychan

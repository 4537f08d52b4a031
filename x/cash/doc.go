/*
Package cash keeps track of the token balances owned by each address.

There is no logic in the tokens, except that the balance of any token
may not go below zero. Thus, this implementation is referred to as
cash. Simple and safe.

Other extensions move funds through the Controller interface instead of
touching wallets directly.
*/
package cash

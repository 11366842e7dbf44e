/*
Package price implements fixed-point prices in fiat and crypto currencies
and the temporary premium charged for recently released .eth names.

# Features

  - Immutable prices, ensuring safe usage across multiple goroutines
  - Exact arithmetic on arbitrary-precision scaled integers
  - Approximate scaling by real factors with explicit truncation rules
  - Conversion between currencies using caller-supplied exchange rates
  - Display formatting with per-currency precision and range limits
  - The exponentially decaying premium of the .eth registrar

# Representation

A [Price] holds a [Currency] and an integer number of the smallest scaled
unit of that currency: cents for USD, wei for ETH.
The number of decimals of each currency is fixed, so USD 1.23 is stored as
123 and ETH 1 as 10^18.
The integer is a [math/big.Int], so 18-decimal token amounts never overflow
and never pass through a floating-point type during exact arithmetic.

A [Currency] is an integer index into in-memory arrays holding its code,
decimals, display decimals, display range, and affixes.

# Operations

Addition, subtraction and comparison are exact and require both prices to be
denominated in the same currency.
Multiplication by a real number goes through [Price.MulFloat] or
[Price.ApproxScale]; both truncate toward zero.
Conversion between currencies goes through [ConvertCurrency] and a table of
[ExchangeRates] in a common reference unit.

# Formatting

[Price.Formatted] renders a price rounded to the display decimals of its
currency, with thousands separators and an optional symbol prefix and
acronym suffix.
Non-zero values too small or too large for their currency render as
underflow ("<0.001") or overflow (">999,999") labels.
Negative prices have no display form and render as the underflow label.

# Temporary premium

When a .eth name expires it enters a grace period, after which it is released
and anyone may register it. For 21 days after release the registration price
includes a premium that starts at USD 100,000,000 and halves every day.
[PremiumSchedule] computes that premium at a given instant, and
[TemporaryPremiumAt] evaluates the default schedule.

# Errors

Arithmetic across currencies fails with [ErrCurrencyMismatch].
Non-finite numbers fail with [ErrInvalidNumber] or [ErrInvalidScalar], and
unknown currency codes or missing exchange rates with [ErrUnknownCurrency].
Constructors prefixed with Must panic instead of returning an error.
*/
package price

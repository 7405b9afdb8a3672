/*
Package core holds types shared by all parts of mathacc, most notably
application errors carrying an error code and a user message.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core
